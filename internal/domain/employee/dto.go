package employee

type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func ToDepartmentResponse(d Department) DepartmentResponse {
	return DepartmentResponse{ID: d.ID, Name: d.Name}
}
