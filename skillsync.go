// Package skillsync keeps a local skill document in step with an upstream
// Markdown README. It fetches the README, keeps only the sections an end user
// needs, strips boilerplate blocks and splices the result into the local file
// after a fixed marker.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goldmark/, http/, yaml/).
package skillsync
