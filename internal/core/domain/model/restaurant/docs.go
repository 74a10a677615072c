// Package restaurant contains the Restaurant entity and its MenuItem entities.
// Restaurants are read-mostly reference data; menu items carry the prices that
// get snapshotted into orders at creation time.
package restaurant
