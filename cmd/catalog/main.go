// Package main is the entry point for the catalog API.
//
// @title Catalog API
// @version 1.0
// @description Products and categories with pagination, search and soft delete.
//
// @host localhost:8080
// @BasePath /
// @schemes http https
package main

import "github.com/catalogapp/catalog/cmd/catalog/cmd"

func main() {
	cmd.Execute()
}
