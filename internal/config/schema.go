package config

// configSchema is the JSON Schema every configuration file must satisfy
// before decoding. It catches structural mistakes (wrong types, unknown
// keys, out-of-range constants); semantic checks that need cross-field
// knowledge live in Config.Validate.
const configSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "ability": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "max_iterations": {"type": "integer", "minimum": 0},
        "tolerance": {"type": "number", "minimum": 0},
        "quad_points": {"type": "integer", "minimum": 0},
        "quad_spread": {"type": "number", "minimum": 0},
        "min_mle_responses": {"type": "integer", "minimum": 0}
      }
    },
    "scheduler": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "weights": {"type": ["object", "null"]},
        "target_retention": {"type": "number", "minimum": 0, "exclusiveMaximum": 1},
        "maximum_interval": {"type": "integer", "minimum": 0},
        "fast_latency_ms": {"type": "integer", "minimum": 0}
      }
    },
    "calibration": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "max_iterations": {"type": "integer", "minimum": 0},
        "tolerance": {"type": "number", "minimum": 0},
        "m_step_steps": {"type": "integer", "minimum": 0},
        "learning_rate": {"type": "number", "minimum": 0},
        "three_parameter": {"type": "boolean"}
      }
    },
    "priority": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "weights": {
          "type": ["object", "null"],
          "additionalProperties": {
            "type": "object",
            "additionalProperties": false,
            "properties": {
              "frequency": {"type": "number", "minimum": 0, "maximum": 1},
              "relational": {"type": "number", "minimum": 0, "maximum": 1},
              "contextual": {"type": "number", "minimum": 0, "maximum": 1}
            }
          }
        },
        "new_item_urgency": {"type": "number", "minimum": 0},
        "overdue_slope": {"type": "number", "minimum": 0},
        "urgency_cap": {"type": "number", "minimum": 0},
        "not_due_base": {"type": "number", "minimum": 0},
        "not_due_floor": {"type": "number", "minimum": 0},
        "not_due_decay_hours": {"type": "number", "minimum": 0}
      }
    },
    "selection_strategy": {"type": "string", "enum": ["fisher", "kl"]},
    "session_size": {"type": "integer", "minimum": 1},
    "new_item_ratio": {"type": "number", "minimum": 0, "maximum": 1}
  }
}`
