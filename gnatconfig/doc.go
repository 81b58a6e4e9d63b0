/*
Package gnatconfig holds the tunable parameters shared by gnat1 and
gnat2: population size, causal scoring constants, strictness, and
output mode. Values are assembled in three layers, lowest priority
first: built-in defaults, an optional TOML file, then CLI flags
supplied by the caller. Each layer only overrides the fields it sets.
*/
package gnatconfig
