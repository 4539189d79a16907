/*
Package newick provides facilities for reading and writing trees in the
Newick format. The format used is roughly equivalent to the conventions
established here:
http://evolution.genetics.washington.edu/phylip/newick_doc.html.

Quoted labels and bracketed comments are supported. A comment of the form
'[&R]' or '[&U]' at the start of a tree sets whether it is rooted. Other
comments are dropped. Underscores in unquoted labels are kept as they are.

Trees are read into and written from the clades of package phyloxml, so a
tree read here can be annotated with the richer phyloXML elements.

An informal description of the Newick format can be found here:
http://evolution.genetics.washington.edu/phylip/newicktree.html.
*/
package newick
