/*
Package decode provides the shared machinery of the recursive-descent
decode protocol: typed attribute extraction, the decode error taxonomy,
and the child event loop that enforces the cursor discipline.

The protocol: the caller pulls an entity's own start event off the
shared cursor and hands it to that entity's decoder. The decoder reads
its attributes, then consumes events through Children until its own end
tag, delegating known child tags to their decoders. Every decoder
consumes exactly the markup subtree rooted at its own start tag, never
more, never less; the recursive calls all return control to the same
shared cursor, so a correct child decode can never desynchronize its
siblings.
*/
package decode
