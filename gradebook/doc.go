/*
Package gradebook models a student's gradebook as reported by the
StudentVUE portal, and decodes the portal's XML payload into it.

The tree is rooted at Gradebook: courses, each with grading-period
marks, each with assignments, grade-calculation categories and
standards-based views. Decode rebuilds the tree from a flat event
sequence by recursive descent over a shared cursor, one decoder per
entity type; no parse tree is ever materialized.

Several free-text portal fields encode structured data as prose. Those
are modeled as tagged values with an explicit unparseable fallback that
preserves the original text: AssignmentScore ("8 out of 10"),
AssignmentPoints ("10 Points Possible", "7/10"), GradeCalcWeight
("40%") and CourseTitle ("Algebra I (MATH101)"). Their parsers never
fail; unrecognized text degrades to the fallback and the rest of the
tree still decodes.

Decoded values are immutable snapshot data: a later version of a
gradebook is a freshly decoded tree, never a patched one.
*/
package gradebook
