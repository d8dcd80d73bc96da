package services

import (
	"regexp"
	"strings"
)

// archaicTerms maps legalese to plain-language replacements.
var archaicTerms = []struct {
	pattern *regexp.Regexp
	repl    string
}{
	{regexp.MustCompile(`(?i)hereinafter`), "from now on"},
	{regexp.MustCompile(`(?i)aforesaid`), "mentioned above"},
	{regexp.MustCompile(`(?i)thereof`), "of it"},
	{regexp.MustCompile(`(?i)therein`), "in it"},
	{regexp.MustCompile(`(?i)whereas`), "given that"},
	{regexp.MustCompile(`(?i)witnesseth`), "confirms"},
}

var sentenceBoundary = regexp.MustCompile(`(?:[.!?])\s+`)

// maxSentenceLen is the length beyond which a sentence is broken up
// at semicolons or commas during simplification.
const maxSentenceLen = 240

// SimplifyText rewrites archaic legalese into plain language and
// breaks up over-long sentences. Best-effort; the output is a reading
// aid, not a legally equivalent rewording.
func SimplifyText(text string) string {
	simple := text
	for _, term := range archaicTerms {
		simple = term.pattern.ReplaceAllString(simple, term.repl)
	}

	var out []string
	for _, sentence := range splitSentences(simple) {
		if len(sentence) <= maxSentenceLen {
			out = append(out, sentence)
			continue
		}
		parts := strings.FieldsFunc(sentence, func(r rune) bool {
			return r == ';' || r == ','
		})
		if len(parts) <= 1 {
			out = append(out, sentence)
			continue
		}
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p+".")
			}
		}
	}
	return strings.Join(out, " ")
}

// splitSentences splits text on sentence-ending punctuation, keeping
// the punctuation with the sentence.
func splitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	last := 0
	for _, loc := range sentenceBoundary.FindAllStringIndex(text, -1) {
		// loc[0] is the punctuation mark; keep it.
		sentences = append(sentences, text[last:loc[0]+1])
		last = loc[1]
	}
	if last < len(text) {
		sentences = append(sentences, text[last:])
	}
	return sentences
}
