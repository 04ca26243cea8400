/*
Package svue is a client for the StudentVUE portal's SOAP web service.

It builds the request envelope (credentials plus an attribute-escaped
paramStr), performs the HTTP call, unwraps the response envelope to the
inner payload document, and surfaces portal-reported errors as
RemoteError values. The high-level Gradebook methods feed the inner
payload through the events and gradebook packages to return a decoded
tree.
*/
package svue
