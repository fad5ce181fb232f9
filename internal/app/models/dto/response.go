package dto

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Success    bool            `json:"success"`
	Data       interface{}     `json:"data,omitempty"`
	Message    string          `json:"message,omitempty"`
	Pagination *PaginationInfo `json:"pagination,omitempty"`
}

// PaginationInfo carries page metadata for list endpoints.
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// NewSuccessResponse wraps data in the standard envelope.
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// NewMessageResponse reports an action that produced no payload.
func NewMessageResponse(message string) APIResponse {
	return APIResponse{Success: true, Message: message}
}

// NewListResponse wraps a page of results together with its pagination info.
func NewListResponse(data interface{}, pagination *PaginationInfo) APIResponse {
	return APIResponse{Success: true, Data: data, Pagination: pagination}
}

// NewErrorResponse reports a failed request.
func NewErrorResponse(message string) APIResponse {
	return APIResponse{Success: false, Message: message}
}
