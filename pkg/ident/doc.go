// Package ident defines the stable, interned identifiers used throughout the
// battle core: species, moves, items, abilities, types, statuses, weather and
// terrain. Every domain entity is referenced by one of these tags rather than
// by display name; string lookup is normalized (lowercased, alphanumeric
// only) and performed once at the boundary between external data (JSON
// catalogues, user input) and the core. No package beyond ident and the
// repository it backs should call Normalize directly — everything else
// compares tags by value equality.
package ident
