package response

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Status:  "error",
		Error:   "invalid_request",
		Details: "Invalid request format",
	}

	ErrDesignNotFound = ErrorResponse{
		Status:  "error",
		Error:   "design_not_found",
		Details: "Design with this id does not exist",
	}

	ErrGenerationNotFound = ErrorResponse{
		Status:  "error",
		Error:   "generation_not_found",
		Details: "Generation job with this id does not exist",
	}

	ErrPromptRequired = ErrorResponse{
		Status:  "error",
		Error:   "prompt_required",
		Details: "Design prompt must not be empty",
	}
)
