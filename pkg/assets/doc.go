// Package assets publishes module asset directories into the public web
// root.
//
// Each module ends up at <assets root>/<Module>. The publisher tries the
// requested method first and falls back along relative symlink, absolute
// symlink, copy. Failures are isolated per module and recorded in the
// Report rather than aborting the batch.
package assets
