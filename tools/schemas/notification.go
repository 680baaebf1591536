package schemas

// NotificationSchemas returns schemas for notification-related tools.
func NotificationSchemas() map[string]ToolSchema {
	return map[string]ToolSchema{
		"send_notification": {
			Description: "Send a native desktop notification and wait for the user's response. Supports action buttons, a text reply field, and a custom timeout. Returns how the user interacted with the notification (clicked, replied, dismissed, or timed out).",
			Schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"message": map[string]any{
						"type":        "string",
						"description": "The notification body text",
					},
					"title": map[string]any{
						"type":        "string",
						"description": "Optional title for the notification (default: 'DeskPal')",
					},
					"actions": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "Optional action button labels (up to 3). Shown as a dropdown when more than one is given.",
					},
					"dropdownLabel": map[string]any{
						"type":        "string",
						"description": "Label for the actions dropdown. Required by the notifier when more than one action is supplied.",
					},
					"reply": map[string]any{
						"type":        "boolean",
						"description": "Enable a text reply input field on the notification",
					},
					"timeout": map[string]any{
						"type":        "number",
						"description": "Seconds to wait for the user before giving up. Defaults depend on the notification shape (simple/actions/reply).",
					},
				},
				"required": []string{"message"},
			},
		},
	}
}
