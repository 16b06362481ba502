package rec

import "math/rand"

// corruptChance is the probability that Perturb alters its input at all.
const corruptChance = 0.30

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Perturb simulates a single data-entry error on text. With probability 0.70
// the input is returned unchanged; otherwise exactly one character-level
// operation is applied at a uniformly chosen position: delete, insert a
// random letter, replace with a random letter, or swap with the adjacent
// character. The output therefore differs from the input by at most one
// such operation, and its length by at most one character.
//
// Empty input returns immediately without consuming a draw from rng. The
// result is deterministic for a given rng state and never shares memory
// with the input.
func Perturb(text string, rng *rand.Rand) string {
	if text == "" {
		return text
	}
	if rng.Float64() > corruptChance {
		return text
	}
	chars := []rune(text)
	op := rng.Intn(4)
	idx := rng.Intn(len(chars))
	switch op {
	case 0: // delete
		chars = append(chars[:idx], chars[idx+1:]...)
	case 1: // insert
		letter := rune(letters[rng.Intn(len(letters))])
		chars = append(chars[:idx], append([]rune{letter}, chars[idx:]...)...)
	case 2: // replace
		chars[idx] = rune(letters[rng.Intn(len(letters))])
	case 3: // swap
		if len(chars) > 1 {
			other := idx + 1
			if idx == len(chars)-1 {
				other = idx - 1
			}
			chars[idx], chars[other] = chars[other], chars[idx]
		}
	}
	return string(chars)
}

// PerturbField applies Perturb to a present field. Absent fields pass
// through untouched and consume no randomness.
func PerturbField(f Field, rng *rand.Rand) Field {
	if !f.Valid {
		return f
	}
	return NewField(Perturb(f.Text, rng))
}
