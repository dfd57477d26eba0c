// Package domain contains the core model for the synastry aspect mapper.
//
// The domain is storage- and UI-agnostic: it does not depend on YAML parsing,
// spreadsheet readers, or the filesystem. Infra/adapters map into/from these types.
package domain
