package main

// @title Tourism Agent API
// @version 1.0
// @description Answers free-text tourism queries with resolved locations, current weather, and nearby attractions.

// @host localhost:8080
// @BasePath /
