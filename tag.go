package cder

// Class identifies one of the four ASN.1 tag classes.
const (
	ClassUniversal       = 0
	ClassApplication     = 1
	ClassContextSpecific = 2
	ClassPrivate         = 3
)

var classNames = map[int]string{
	ClassUniversal:       "UNIVERSAL",
	ClassApplication:     "APPLICATION",
	ClassContextSpecific: "CONTEXT-SPECIFIC",
	ClassPrivate:         "PRIVATE",
}

func validClass(c int) bool { return c >= ClassUniversal && c <= ClassPrivate }

// Universal class tag numbers, per X.680/X.690. Tags 31-34 are the
// X.680:2015 additions (DATE, TIME-OF-DAY, DATE-TIME, DURATION).
const (
	TagBoolean          = 1
	TagInteger          = 2
	TagBitString        = 3
	TagOctetString      = 4
	TagNull             = 5
	TagOID              = 6
	TagObjectDescriptor = 7
	TagExternal         = 8
	TagReal             = 9
	TagEnumerated       = 10
	TagEmbeddedPDV      = 11
	TagUTF8String       = 12
	TagRelativeOID      = 13
	TagSequence         = 16
	TagSet              = 17
	TagNumericString    = 18
	TagPrintableString  = 19
	TagT61String        = 20
	TagVideotexString   = 21
	TagIA5String        = 22
	TagUTCTime          = 23
	TagGeneralizedTime  = 24
	TagGraphicString    = 25
	TagVisibleString    = 26
	TagGeneralString    = 27
	TagUniversalString  = 28
	TagCharacterString  = 29
	TagBMPString        = 30
	TagDate             = 31
	TagTimeOfDay        = 32
	TagDateTime         = 33
	TagDuration         = 34
)

var tagNames = map[int]string{
	TagBoolean:          "BOOLEAN",
	TagInteger:          "INTEGER",
	TagBitString:        "BIT STRING",
	TagOctetString:      "OCTET STRING",
	TagNull:             "NULL",
	TagOID:              "OBJECT IDENTIFIER",
	TagObjectDescriptor: "ObjectDescriptor",
	TagExternal:         "EXTERNAL",
	TagReal:             "REAL",
	TagEnumerated:       "ENUMERATED",
	TagEmbeddedPDV:      "EMBEDDED PDV",
	TagUTF8String:       "UTF8String",
	TagRelativeOID:      "RELATIVE-OID",
	TagSequence:         "SEQUENCE",
	TagSet:              "SET",
	TagNumericString:    "NumericString",
	TagPrintableString:  "PrintableString",
	TagT61String:        "TeletexString",
	TagVideotexString:   "VideotexString",
	TagIA5String:        "IA5String",
	TagUTCTime:          "UTCTime",
	TagGeneralizedTime:  "GeneralizedTime",
	TagGraphicString:    "GraphicString",
	TagVisibleString:    "VisibleString",
	TagGeneralString:    "GeneralString",
	TagUniversalString:  "UniversalString",
	TagCharacterString:  "CHARACTER STRING",
	TagBMPString:        "BMPString",
	TagDate:             "DATE",
	TagTimeOfDay:        "TIME-OF-DAY",
	TagDateTime:         "DATE-TIME",
	TagDuration:         "DURATION",
}

// segmentation thresholds per X.690 CER (9.1, 9.2 and friends).
const (
	cerMaxPrimitiveOctets  = 1000
	cerMaxBitStringBits    = 1000
	cerMaxBMPStringUnits   = 500
	cerMaxUniversalUnits   = 250
)

// defaultRecursionLimit bounds indefinite-length nesting depth during
// decode (Design Note "Recursion counter").
const defaultRecursionLimit = 5
