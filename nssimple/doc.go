/*
Package nssimple resolves storage URIs of the form

	ns://<storage-key>/<path>

to a configured storage and a path on it. The path is relative to the storage's configured root; a doubled slash
addresses the server root instead:

	ns://media/images/logo.png     images/logo.png below the media root
	ns://media//shared/logo.png    /shared/logo.png on the media server
	ns://media                     the media root itself

Usage

	registry := config.NewRegistry(cfg.Storages)

	storage, path, err := nssimple.NewStorage(registry, "ns://media/images/logo.png")
	if err != nil {
		return err
	}

	f, err := storage.Open(ctx, path)
*/
package nssimple
