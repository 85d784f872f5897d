// Package config loads YAML session files for the tutor demo program.
//
// A session file lists learners and the lessons to ask them:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
//	sessions:
//	  - profile:
//	      age: 12
//	      education_level: "fundamental"
//	    strategy: ""              # optional, overrides the age policy
//	    lessons:
//	      - topic: "multiplicação"
//	        context: {a: 3, b: 4}
//	      - topic: "multiplicação"
//	        context: {a: 3, b: 4}
//	        switch: "child"       # swap strategy before this lesson
//
// Values can reference environment variables as ${VAR_NAME}; unset variables
// expand to an empty string.
//
// Load validates strategy names against the tutor registry, rejects negative
// ages and empty topics, and defaults logging to info/text.
package config
