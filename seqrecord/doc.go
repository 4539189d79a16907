/*
Package seqrecord provides a generic annotated sequence record along with
sequence features and their locations on a sequence.

A Record wraps a seq.Sequence from github.com/TuftsBCB/seq with the metadata
that sequence file formats usually carry: an identifier, a short name, a free
text description, an alphabet tag, a list of features and a loosely typed
annotation map.

Feature locations use 0-based, half-open coordinates, so Start and End can be
used directly as slice indexes into the residues. Boundaries may be fuzzy
(e.g., "before 5" or "somewhere between 10 and 12"); the Resolved methods
collapse fuzziness into plain integer coordinates.
*/
package seqrecord
