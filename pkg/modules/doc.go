// Package modules turns installed packages and the application's own module
// directories into Modules, and answers the two questions modsync asks of
// each: where are its public assets, and which paths need writable
// permissions.
//
// A module describes itself in an optional manifest (modsync.toml by
// default) at its root:
//
//	[assets]
//	public_dir = "public"
//
//	[permissions]
//	directories = ["${cache_dir}/Jobs"]
//	files = ["${log_dir}/jobs.log"]
//
// Without a manifest, a public/ directory at the module root is published.
package modules
