// Package main hosts the photosort CLI.
//
// The root command organizes the working directory: it creates the archive
// skeleton, reconciles the raw and jpeg halves on repeat runs, and moves loose
// pictures into place. Positional arguments name extra folders to create next
// to the archive. The config subcommands scaffold and check the TOML file.
package main
