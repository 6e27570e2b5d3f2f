// Copyright 2021 Mark Siner. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package modulation provides the process-wide, read-mostly registry of
modulation schemes used across the three dataset formats this module
ingests. It is the single canonical enumeration that every parser maps
its own dataset-specific spelling onto via an alias table, so the rest
of the core never has to reason about dataset vocabulary again.
*/
package modulation
