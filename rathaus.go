// Package rathaus locates the official websites of German municipalities
// and extracts press/social-media contacts from them, persisting results
// row by row into a CSV table so interrupted batch runs can resume.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., csv/, gemini/, goquery/); the
// decision logic lives in resolve/, contact/ and pipeline/.
package rathaus
