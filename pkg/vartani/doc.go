// Package vartani provides a Hindi spelling classifier for ASR transcript
// vocabularies. Words are checked against a reference vocabulary: exact
// members are correct spellings, everything else — including words the
// vocabulary simply does not know — is an incorrect spelling.
//
// Quick start:
//
//	c, err := vartani.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r := c.Classify("बात")
//	fmt.Println(r.Word, r.Label) // बात correct spelling
//
// The Checker is safe for concurrent use. Create once, reuse across
// requests. See the README for full documentation.
package vartani
