// Package httpapi serves transformed images over HTTP.
//
// Each request names an operation and an image path below the configured
// root; the operation's arguments come from the query string and the
// response body is the transformed image in the source format, with a
// matching Content-Type:
//
//	GET /thumb/photos/cat.jpg?width=200&height=100
//	GET /rotate/photos/cat.jpg?degrees=30&bg=%23FFFFFF
//	GET /info/photos/cat.jpg
//
// Errors are JSON bodies of the form {"error": "..."}: unparsable arguments
// and empty sizes are 400, missing files 404, unsupported or unreadable
// images 415, anything else 500.
package httpapi
