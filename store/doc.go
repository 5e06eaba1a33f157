// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists survey responses as an append-only JSON log.

# On-Disk Format

The backing file is a JSON array of response objects in submission
order. The file is created lazily on the first successful Append and is
rewritten in full on every append (read-modify-write). Survey volume is
low, so whole-file rewrites are deliberately preferred over an
incremental format.

# Concurrency

A per-Store mutex serializes all operations. Two concurrent submissions
therefore cannot race on the read-modify-write cycle and lose an
append. The lock does not extend across processes; one server process
owns a given data directory.

# Failure Semantics

  - Missing file on read: ErrNotFound (queries report 404).
  - Missing file on append: treated as an empty log (lazy creation).
  - Malformed file content: treated as an empty log and logged; the
    next successful append replaces it with well-formed content.
  - I/O failure on read or write: returned wrapped; the caller must not
    assume the append happened.
*/
package store
