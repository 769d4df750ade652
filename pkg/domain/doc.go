// Package domain derives human-meaningful values from decoded mdb records:
// file-handle decomposition, FAT-style year offsets, frame rate, human
// resolution strings, and the closed file-type-name mapping. Every
// function here is a pure projection over already-decoded mdb.* values —
// nothing here touches a buffer or a file.
package domain
