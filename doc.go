// Package cder implements a synchronous, in-memory codec for ASN.1
// values encoded under X.690 Canonical Encoding Rules (CER) and
// Distinguished Encoding Rules (DER). It frames Tag-Length-Value
// elements, implements the per-universal-type value codecs, composes
// and decomposes constructed types, performs CER's primitive
// segmentation, and rejects any encoding that is legal under BER but
// not canonical under CER/DER.
package cder
