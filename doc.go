/*
Package rvue is a set of StudentVUE gradebook support libraries.

Doing the heavy lifting of payload decoding (rebuilding a typed gradebook
tree from a flat markup event stream) and change detection (keyed pairing
and diffing of two gradebook snapshots), these libraries allow easy
grade-tracking application development.

The gradebook package decodes the portal's proprietary XML payload into a
strongly typed domain model, consuming an event sequence produced by the
events package. The diff package compares two decoded snapshots and emits
a minimal changeset of every detected difference, structured by course
and assignment.

The svue package talks to the portal's SOAP web service: it builds the
request envelope, unwraps the response, surfaces portal-reported errors
and feeds the inner payload through the decoder. The calendar package
renders a decoded gradebook as an iCalendar feed of assignment due dates.

See the cmd/gradewatch sub-directory for a small client built on these
packages.
*/
package rvue
