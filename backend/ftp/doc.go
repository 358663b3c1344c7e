/*
Package ftp - FTP implementation of netstorage.Storage for NetStorage style CDN origins.

# Usage

	import "github.com/c2fo/netstorage/backend/ftp"

	func DoSomething(ctx context.Context) error {
		s := ftp.NewStorage(
			ftp.WithKey("media"),
			ftp.WithOptions(ftp.Options{
				Host:     "example.upload.akamai.com",
				User:     "sync",
				Password: "s3cr3t",
				Path:     "/123456",
				MediaURL: "https://media.example.com/",
			}),
		)
		defer s.Disconnect()

		dirs, files, err := s.Listdir(ctx, "images")
		...
	}

To pass a specific client implementing types.Client, use WithClient. The session treats it as already logged in:

	s := ftp.NewStorage(ftp.WithClient(client))

# Sessions

A Storage owns one Session. The session connects on first use, sends NOOP before every later operation and
reconnects once when the probe fails. Commands are serialized on a mutex. Operations that change the working
directory (RETR, STOR, the MKD chain) change back before returning.

# Listings

MLSD is disabled so listings always use LIST. Raw listing text is read off the data connection and handed to the
listing package, which is what makes the "<dir>:" lines of LIST -R usable.

# Downloads

Open keeps files up to Options.MaxMemorySize (2.5 MiB by default) in memory. Larger files are written to a temp
file under Options.TempDir, removed again by Close.

# Authentication

Password is read from Options.Password, or from the NETSTORAGE_FTP_PASSWORD environment variable when empty.
*/
package ftp
