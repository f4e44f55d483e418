// Package anm2codec encodes and decodes the hybrid Lua-script-plus-
// embedded-JSON format used for PSDToolKit layer selector scripts: a
// single metadata line wrapped in a Lua long comment
// (--[==[PTK:{json}]==]) followed by the generated Lua script body that
// the JSON reconstructs from nothing but also carries a checksum of.
package anm2codec

import "encoding/json"

// wireHeader is the JSON object embedded in the --[==[PTK:...]==] line.
// Field presence mirrors the reference generator exactly: psd/label/
// information/defaultCharacterId are omitted when empty, and
// exclusive_support_default is omitted entirely when true (the default),
// present only to record an explicit false.
type wireHeader struct {
	Version                 int            `json:"version"`
	Checksum                string         `json:"checksum"`
	Selectors               []wireSelector `json:"selectors"`
	PSD                     string         `json:"psd,omitempty"`
	Label                   string         `json:"label,omitempty"`
	ExclusiveSupportDefault *bool          `json:"exclusive_support_default,omitempty"`
	Information             string         `json:"information,omitempty"`
	DefaultCharacterID      string         `json:"defaultCharacterId,omitempty"`
}

// wireSelector is {"group": "<name>", "items": [...]}. Each element of
// Items is either a 2-element JSON array [name, value] (a value item) or
// a JSON object (an animation item, see wireAnimationItem) — decoded
// generically via json.RawMessage since the shapes differ.
type wireSelector struct {
	Group string            `json:"group"`
	Items []json.RawMessage `json:"items"`
}

// wireAnimationItem is {"script": "...", "n": "...", "params": [[k,v],...]}.
type wireAnimationItem struct {
	Script string     `json:"script"`
	Name   string     `json:"n,omitempty"`
	Params [][2]string `json:"params"`
}
