// Package fileutil holds the file modes used when writing files.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for files that may hold API
// details, such as test copies of documents (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// ReadableByAll is the file permission mode for rendered diagrams, which
// are meant to be opened by viewers and other users.
const ReadableByAll os.FileMode = 0o644
