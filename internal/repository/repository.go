// Package repository owns the application's data.
//
// Users live in process memory only: the store is created empty at
// startup and discarded on exit.
package repository
