// Package permissions makes sure the application's writable paths exist
// with the modes the web server needs.
//
// Required paths come from Contributors: the core list of the application
// itself plus any module that declares directories or files. Every path is
// handled on its own; a failure is logged and the pass moves on.
package permissions
