// Package catalog registers every pattern demonstration and runs them by name.
//
// The catalog is the only place that knows about all pattern packages.
// Each pattern package stays independent: it exposes its own Demo driver
// with whatever inputs it needs, and the catalog adapts those drivers to
// a single signature fed by config.Settings.
package catalog
