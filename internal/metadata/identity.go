package metadata

import (
	"strings"

	"github.com/google/uuid"
)

// NamespaceRecordIdentity is the UUID v5 namespace for record identities,
// derived from "mdrepo.org/record-identity/v1" under the URL namespace.
var NamespaceRecordIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("mdrepo.org/record-identity/v1"))

// RecordID returns a deterministic identity for a record. Records carrying
// a repository id are keyed by it, so the same record has the same identity
// in either encoding and under any file name. Otherwise the normalized
// source path is used.
//
// Examples:
//   - mdrepo_id "MDR_00000002" → uuid_v5(namespace, "mdrepo:MDR_00000002")
//   - no id, path "./Runs/A.toml" → uuid_v5(namespace, "path:runs/a.toml")
func RecordID(rec Record, path string) uuid.UUID {
	if id := strings.TrimSpace(rec.Identifier()); id != "" {
		return uuid.NewSHA1(NamespaceRecordIdentity, []byte("mdrepo:"+id))
	}
	return uuid.NewSHA1(NamespaceRecordIdentity, []byte("path:"+normalizePath(path)))
}

// normalizePath lowercases and strips a leading "./" so that equivalent
// spellings of the same path share an identity.
func normalizePath(path string) string {
	normalized := strings.ToLower(strings.ReplaceAll(path, "\\", "/"))
	return strings.TrimPrefix(normalized, "./")
}
