// Package task loads and normalizes the league task dataset.
//
// The dataset is a JSON document with a top-level task array, either bare
// or under a "tasks" key:
//
//	{
//	  "tasks": [
//	    {
//	      "Area": "Lumbridge",
//	      "Task": "Chop a tree",
//	      "Information": "Any tree will do",
//	      "Requirements": "None",
//	      "Pts": 10,
//	      "Tags": ["Skill", "Woodcutting"]
//	    }
//	  ]
//	}
//
// Every element field is optional. Missing or malformed fields are
// defaulted rather than rejected: strings default to "", Pts to 0, Tags to
// an empty list. Pts is accepted as a JSON number or a numeric string;
// Tags as an array of strings or a single semicolon-delimited string.
//
// A CSV fallback with six ordered columns (area, task, information,
// requirements, points, semicolon-delimited tags) is supported for the
// same data, comma-delimited with double-quote escaping.
//
// Task IDs are positional indices into the loaded array. They are unique
// and stable for a given dataset, so persisted id sets are only valid
// against the same load order.
//
// # Validation
//
// Validate checks a raw dataset document against the embedded JSON Schema
// (draft 2020-12) when possible and falls back to minimal structural
// checks otherwise. Validation is advisory: loading never rejects
// individual records.
package task
