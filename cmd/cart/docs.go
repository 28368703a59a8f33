package main

// @title Cart Service API
// @version 1.0
// @description Per-user shopping cart for the Kemasindo storefront

// @contact.name API Support
// @contact.email support@kemasindo.example

// @host localhost:8082
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
