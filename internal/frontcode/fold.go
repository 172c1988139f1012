package frontcode

import "fmt"

// EncodeAll front-codes a sorted sequence of words. The prior word starts
// empty and advances to each plain word in turn.
func EncodeAll(words []PlainWord) ([]EncodedRecord, error) {
	out := make([]EncodedRecord, 0, len(words))
	var prior PlainWord
	for i, w := range words {
		rec, err := Encode(w, prior)
		if err != nil {
			return nil, fmt.Errorf("word %d: %w", i+1, err)
		}
		out = append(out, rec)
		prior = w
	}
	return out, nil
}

// DecodeAll reverses EncodeAll. The prior word advances to each decoded
// word in turn.
func DecodeAll(recs []EncodedRecord) ([]PlainWord, error) {
	out := make([]PlainWord, 0, len(recs))
	var prior PlainWord
	for i, r := range recs {
		w, err := Decode(r, prior)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		out = append(out, w)
		prior = w
	}
	return out, nil
}
