// Package storage provides the backing-store abstraction a device opens to
// discover its capacity.
//
// The device core never reads or writes sectors through this package; it
// only opens a store read-only, asks for its size and closes it again.
// Implementations:
//
//   - [FileOpener] - image files, and block device nodes on Linux sized
//     through the kernel with github.com/mdlayher/block
//   - [MemoryOpener] - named in-memory stores of a fixed size, for tests
//     and dry runs
//   - [OpenerFunc] - adapter for ad-hoc openers
package storage
