// Package perr defines the closed set of parse-error codes the tree
// builder (and a conforming tokenizer) report, and the Reporter seam
// the application supplies to receive them. Ported from the teacher's
// errors package, split into a dedicated ambient-stack package since
// error reporting here is not a Go `error` return: parse errors are
// recoverable and parsing always continues past them (spec.md §7).
package perr

// Code identifies one named parse error from the WHATWG HTML Living
// Standard, https://html.spec.whatwg.org/multipage/parsing.html#parse-errors.
type Code string

// Tokenizer-level errors. The tree builder emits only one of these
// itself, EOFInTag, at end of input inside a raw-text or RCDATA
// element; a conforming Source is expected to use this vocabulary so a
// single Reporter can observe both layers.
const (
	AbruptClosingOfEmptyComment                               Code = "abrupt-closing-of-empty-comment"
	AbruptDoctypePublicIdentifier                             Code = "abrupt-doctype-public-identifier"
	AbruptDoctypeSystemIdentifier                             Code = "abrupt-doctype-system-identifier"
	AbsenceOfDigitsInNumericCharReference                     Code = "absence-of-digits-in-numeric-character-reference"
	CDATAInHTMLContent                                        Code = "cdata-in-html-content"
	ControlCharacterInInputStream                             Code = "control-character-in-input-stream"
	DuplicateAttribute                                        Code = "duplicate-attribute"
	EndTagWithAttributes                                      Code = "end-tag-with-attributes"
	EndTagWithTrailingSolidus                                 Code = "end-tag-with-trailing-solidus"
	EOFBeforeTagName                                          Code = "eof-before-tag-name"
	EOFInComment                                               Code = "eof-in-comment"
	EOFInDoctype                                               Code = "eof-in-doctype"
	EOFInTag                                                   Code = "eof-in-tag"
	IncorrectlyClosedComment                                  Code = "incorrectly-closed-comment"
	IncorrectlyOpenedComment                                  Code = "incorrectly-opened-comment"
	InvalidFirstCharacterOfTagName                            Code = "invalid-first-character-of-tag-name"
	MissingAttributeValue                                     Code = "missing-attribute-value"
	MissingDoctypeName                                        Code = "missing-doctype-name"
	MissingDoctypePublicIdentifier                            Code = "missing-doctype-public-identifier"
	MissingDoctypeSystemIdentifier                             Code = "missing-doctype-system-identifier"
	MissingQuoteBeforeDoctypePublicIdentifier                 Code = "missing-quote-before-doctype-public-identifier"
	MissingQuoteBeforeDoctypeSystemIdentifier                 Code = "missing-quote-before-doctype-system-identifier"
	MissingWhitespaceAfterDoctypePublicKeyword                Code = "missing-whitespace-after-doctype-public-keyword"
	MissingWhitespaceAfterDoctypeSystemKeyword                Code = "missing-whitespace-after-doctype-system-keyword"
	MissingWhitespaceBeforeDoctypeName                        Code = "missing-whitespace-before-doctype-name"
	MissingWhitespaceBetweenAttributes                        Code = "missing-whitespace-between-attributes"
	MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers Code = "missing-whitespace-between-doctype-public-and-system-identifiers"
	NestedComment                                             Code = "nested-comment"
	NonVoidHTMLElementStartTagWithTrailingSolidus             Code = "non-void-html-element-start-tag-with-trailing-solidus"
	UnexpectedCharacterInAttributeName                        Code = "unexpected-character-in-attribute-name"
	UnexpectedEqualsSignBeforeAttributeName                   Code = "unexpected-equals-sign-before-attribute-name"
	UnexpectedNullCharacter                                   Code = "unexpected-null-character"
	UnexpectedQuestionMarkInsteadOfTagName                    Code = "unexpected-question-mark-instead-of-tag-name"
	UnexpectedSolidusInTag                                    Code = "unexpected-solidus-in-tag"
)

// Tree-construction errors (spec.md §13.2.6). The builder reports its
// tree-construction errors from this set; not every code here has a
// call site in the builder.
const (
	UnexpectedDOCTYPE                    Code = "unexpected-doctype"
	MissingDoctype                       Code = "missing-doctype"
	NonSpaceCharacterInTableText         Code = "non-space-character-in-table-text"
	FosterParentedCharacter              Code = "foster-parented-character"
	FosterParentedElement                Code = "foster-parented-element"
	UnexpectedStartTagIgnored            Code = "unexpected-start-tag-ignored"
	UnexpectedEndTag                     Code = "unexpected-end-tag"
	ClosedElementsWithOpenChildNodes     Code = "generic-parser-mismatch"
	AdoptionAgencyParseError             Code = "adoption-agency-1.3"
	MisplacedDoctype                     Code = "misplaced-doctype"
	MisplacedStartTagForHeadElement      Code = "misplaced-start-tag-for-head-element"
	NestedNoscriptInHead                 Code = "nested-noscript-in-head"
	SelfClosingAcknowledgementMissing    Code = "non-void-html-element-start-tag-with-trailing-solidus"
	UnexpectedTokenInForeignContent      Code = "unexpected-html-element-in-foreign-content"
	EndTagWithoutMatchingOpenElement     Code = "stray-end-tag"
	ImpliedEndTagsOnSpecialElement       Code = "implied-end-tags-skipped-special-element"
)

var messages = map[Code]string{
	AbruptClosingOfEmptyComment:                               "empty comment abruptly closed by U+003E",
	AbruptDoctypePublicIdentifier:                             "U+003E in the DOCTYPE public identifier",
	AbruptDoctypeSystemIdentifier:                             "U+003E in the DOCTYPE system identifier",
	AbsenceOfDigitsInNumericCharReference:                     "numeric character reference with no digits",
	CDATAInHTMLContent:                                        "CDATA section outside foreign content",
	ControlCharacterInInputStream:                             "control character in input stream",
	DuplicateAttribute:                                        "attribute repeats a name already seen on this tag",
	EndTagWithAttributes:                                      "end tag carries attributes",
	EndTagWithTrailingSolidus:                                 "end tag has a trailing solidus",
	EOFBeforeTagName:                                          "end of input where a tag name was expected",
	EOFInComment:                                              "end of input inside a comment",
	EOFInDoctype:                                              "end of input inside a DOCTYPE",
	EOFInTag:                                                  "end of input inside a tag",
	IncorrectlyClosedComment:                                  "comment closed incorrectly",
	IncorrectlyOpenedComment:                                  "comment opened incorrectly",
	InvalidFirstCharacterOfTagName:                            "invalid first character of a tag name",
	MissingAttributeValue:                                     "attribute name not followed by a value",
	MissingDoctypeName:                                        "DOCTYPE without a name",
	MissingDoctypePublicIdentifier:                            "DOCTYPE with a missing public identifier",
	MissingDoctypeSystemIdentifier:                            "DOCTYPE with a missing system identifier",
	MissingQuoteBeforeDoctypePublicIdentifier:                 "DOCTYPE public identifier without a leading quote",
	MissingQuoteBeforeDoctypeSystemIdentifier:                 "DOCTYPE system identifier without a leading quote",
	MissingWhitespaceAfterDoctypePublicKeyword:                "missing whitespace after the DOCTYPE PUBLIC keyword",
	MissingWhitespaceAfterDoctypeSystemKeyword:                "missing whitespace after the DOCTYPE SYSTEM keyword",
	MissingWhitespaceBeforeDoctypeName:                        "missing whitespace before the DOCTYPE name",
	MissingWhitespaceBetweenAttributes:                        "missing whitespace between attributes",
	MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers: "missing whitespace between DOCTYPE public and system identifiers",
	NestedComment:                                             "comment nested inside another comment",
	NonVoidHTMLElementStartTagWithTrailingSolidus:             "self-closing solidus on a non-void, non-foreign element",
	UnexpectedCharacterInAttributeName:                        "unexpected character in an attribute name",
	UnexpectedEqualsSignBeforeAttributeName:                   "equals sign before an attribute name",
	UnexpectedNullCharacter:                                   "unexpected U+0000 NULL character",
	UnexpectedQuestionMarkInsteadOfTagName:                    "question mark where a tag name was expected",
	UnexpectedSolidusInTag:                                    "unexpected solidus in tag",
	UnexpectedDOCTYPE:                                         "DOCTYPE token outside the initial insertion mode",
	MissingDoctype:                                            "document has no DOCTYPE",
	NonSpaceCharacterInTableText:                               "non-space character in table text triggers foster parenting",
	FosterParentedCharacter:                                   "character data foster-parented out of a table",
	FosterParentedElement:                                     "element foster-parented out of a table",
	UnexpectedStartTagIgnored:                                 "start tag ignored in this insertion mode",
	UnexpectedEndTag:                                          "end tag does not match any open element",
	ClosedElementsWithOpenChildNodes:                          "element closed while it still had open child elements",
	AdoptionAgencyParseError:                                  "adoption agency algorithm repaired a misnested formatting element",
	MisplacedDoctype:                                          "DOCTYPE in a position other than document start",
	MisplacedStartTagForHeadElement:                           "head start tag outside the head",
	NestedNoscriptInHead:                                      "content not permitted in head noscript",
	UnexpectedTokenInForeignContent:                           "HTML-only start tag breaks out of foreign content",
	EndTagWithoutMatchingOpenElement:                          "end tag with no matching open element",
	ImpliedEndTagsOnSpecialElement:                            "implied end tag generation stopped at a special element",
}

// Message returns a human-readable description of code, or a generic
// fallback for codes not in the closed set (which should not occur
// for a conforming Source/builder pair).
func Message(code Code) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return "unrecognized parse error"
}
