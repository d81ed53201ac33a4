// Package passimages tracks the image files of a pass bundle by role and
// display density.
//
// # Quick Start
//
// Scan a directory and query the result:
//
//	store, err := passimages.NewStore().LoadFromDirectory("./pass.images")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	path, ok, err := store.Get(passimages.RoleIcon, passimages.Density2x)
//	if err != nil {
//	    log.Fatal(err) // unknown role or density
//	}
//	if !ok {
//	    // icon@2x.png was not provided
//	}
//
// # Roles and Densities
//
// A Store accepts a closed Vocabulary of roles (background, footer, icon,
// logo, strip, thumbnail by default) and densities (1x, 2x, 3x). Use
// NewVocabulary with WithVocabulary to accept other roles or densities:
//
//	vocab, err := passimages.NewVocabulary(
//	    append(passimages.DefaultRoles(), "hero"),
//	    passimages.DefaultDensities(),
//	)
//	store := passimages.NewStore(passimages.WithVocabulary(vocab))
//
// Get and Set reject keys outside the vocabulary with ErrInvalidRole or
// ErrInvalidDensity. The empty Density means BaseDensity ("1x").
//
// # Naming Convention
//
// DirectoryLoader recognizes immediate entries of a directory named:
//
//	<role>.png        base density
//	<role>@2x.png     2x
//	<role>@3x.png     3x, and so on for every density in the vocabulary
//
// Anything else is skipped without error, since asset directories commonly
// hold unrelated files. Missing densities are reported as absent; nothing is
// upscaled or substituted.
//
// # Concurrency
//
// A Store has no internal locking. Each pass being assembled should own
// its own Store.
package passimages
