package contententity

type BlogPostFields struct {
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Excerpt       string   `json:"excerpt"`
	Content       any      `json:"content"`
	FeaturedImage *Asset   `json:"featuredImage"`
	Author        string   `json:"author"`
	PublishDate   string   `json:"publishDate"`
	Tags          []string `json:"tags"`
	ReadTime      int      `json:"readTime"`
}

type BlogPost = Record[BlogPostFields]
