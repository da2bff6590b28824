package dto

type SatsangPageResponse struct {
	Page      int    `json:"page"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	ContentEn string `json:"content_en,omitempty"`
	Author    string `json:"author,omitempty"`
	HasPrev   bool   `json:"has_prev"`
	HasNext   bool   `json:"has_next"`
	IsToday   bool   `json:"is_today"`
	Fallback  bool   `json:"fallback"`
}

type ServerTimeResponse struct {
	ServerTime string `json:"server_time"`
	Date       string `json:"date"`
	Timezone   string `json:"timezone"`
}
