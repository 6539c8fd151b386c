// Package file provides a file backed DataFetcher for the config package.
//
// Files are read through an afero.Fs, the OS filesystem by default, which lets
// tests use afero.NewMemMapFs. The contents are read once when the Fetcher is
// constructed; option values loaded from it are therefore a snapshot of the file
// at startup.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/etc/hjarta/options.yaml")()
//	if err != nil {
//	    // file not found, permission denied, path is a directory...
//	}
//	data, err := fetcher.Fetch()
//
// Use errors.Is(err, file.ErrPathIsDirectory) to detect directory paths.
package file
