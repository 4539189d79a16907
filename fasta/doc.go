/*
Package fasta provides routines for reading and writing FASTA files as
seqrecord.Record values. Routines are also provided to read and write aligned
fasta files.

The format used is the one described by NCBI:
http://blast.ncbi.nlm.nih.gov/blastcgihelp.shtml

The first word of a header line is used as the identifier and name of a
record, and the whole header line as its description. When writing, the
identifier is prepended to the description unless the description already
starts with it.

By default, sequences are checked to make sure they contain only valid
characters: a-z, A-Z, * and -. All lowercases letters are translated to their
upper case equivalent.
*/
package fasta
