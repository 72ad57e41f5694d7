// Package risk scores free text for signs of abuse or danger.
//
// The scorer sums the weights of every phrase it finds as a case-insensitive
// substring, across five categories (threats, insults, fear, control and
// gaslighting). A phrase counts once however often it appears.
package risk
