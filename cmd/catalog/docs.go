package main

// @title Catalog Service API
// @version 1.0
// @description Product catalog and instant price quotes for the Kemasindo storefront

// @contact.name API Support
// @contact.email support@kemasindo.example

// @host localhost:8081
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
