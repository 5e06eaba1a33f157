// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package export projects the response log into a downloadable CSV file.

The projection is total: every call renders the entire current response
list and overwrites the artifact, so the CSV on disk always corresponds
to the most recent successful append. Records are open mappings, so the
header row is the sorted union of keys seen across all records to date;
a record missing a key renders an empty field in that column rather
than a shorter row.

encoding/csv is not used here: the format quotes every field
unconditionally (headers included) with internal quotes doubled,
whereas csv.Writer quotes only when required.
*/
package export
