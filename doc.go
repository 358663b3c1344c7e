/*
Package netstorage provides access to a NetStorage style CDN origin: a remote file tree served over FTP, addressed by
paths relative to a configured root, with a public base URL in front of it.

Storage

The ftp backend implements Storage on top of a single serialized FTP session:

	s := ftp.NewStorage(ftp.WithOptions(ftp.Options{
		Host:     "example.upload.akamai.com",
		User:     "sync",
		Password: os.Getenv("NETSTORAGE_PASSWORD"),
		Path:     "/123456",
		MediaURL: "https://media.example.com/",
	}))
	defer s.Disconnect()

	f, err := s.Open(ctx, "images/logo.png")

The session connects lazily, probes liveness with NOOP before each operation and reconnects transparently when the
probe fails. Every command that changes the working directory restores it before returning.

Listings

Raw LIST and LIST -R output is parsed by the listing package. A line ending in ":" moves the current directory
cursor used to qualify the entries that follow.

Cache

The treesync package walks a recursive listing and upserts one cache.Node per directory and file into a cache.Store
(gorm, badger or in-memory). Syncs are idempotent; entries removed remotely are left in the cache.

Configuration

The config package loads storage definitions with viper and builds an explicit Registry that resolves a storage key
to its Storage. The netstorage command wires all of it together.
*/
package netstorage
