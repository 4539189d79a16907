/*
Package phyloxml provides an in-memory object model for phylogenetic trees as
described by the phyloXML format: http://www.phyloxml.org.

A document is represented by a Phyloxml value, which holds an ordered list of
Phylogeny trees. Each Phylogeny has at most one root Clade, and each Clade owns
its child clades. Clades keep a back reference to their parent so that
properties owned by the tree (such as whether it is rooted) can be looked up
from any node. The back reference is only maintained through AddClade,
InsertClade, RemoveClade and the Phylogeny root setters, so the child list of
a clade is not exported.

The remaining types are the small elements that can be attached to clades and
trees: taxonomies, sequences, confidences, events and so on. Several of these
have fields that phyloXML restricts to a pattern or a controlled vocabulary
(e.g., Taxonomy.Rank). Such values are checked when the element is built with
its New function. By default, a value that does not conform is reported as a
warning and the element is still built, since real world documents are often
slightly non-compliant. See Checker for making this strict or for collecting
the warnings instead of logging them.

Reading and writing the XML representation is not handled here. Sequence
and ProteinDomain can be converted to and from the generic records and
features of package seqrecord.
*/
package phyloxml
