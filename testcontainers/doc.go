/*
Package testcontainers runs the ftp storage and the tree sync against a real vsftpd server started in the local
Docker daemon. It is its own module so the root module does not depend on testcontainers-go.

	cd testcontainers && go test ./...
*/
package testcontainers
