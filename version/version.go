// version.go
package version

// AppName holds the name of the client, used in the User-Agent header.
var AppName = "go-api-github-client"

// Version holds the current version of the client.
var Version = "0.1.0"

// GetAppName returns the name of the client.
func GetAppName() string {
	return AppName
}

// GetVersion returns the current version of the client.
func GetVersion() string {
	return Version
}

// UserAgent returns the User-Agent string sent with every request.
func UserAgent() string {
	return AppName + "/" + Version
}
