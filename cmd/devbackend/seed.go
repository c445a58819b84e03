package main

import "github.com/google/uuid"

// seed loads a small demo dataset covering every resource the admin
// console knows about.
func (s *store) seed() {
	s.data["courses"] = withIDs([]map[string]interface{}{
		{"title": "Go Basics", "category": "Programming", "level": "beginner", "mode": "online",
			"fee": 49.0, "starts_at": "2026-09-15", "published": true,
			"instructor": map[string]interface{}{"name": "Maria Keller", "email": "maria@edudesk.dev"}},
		{"title": "Advanced SQL", "category": "Data", "level": "advanced", "mode": "online",
			"fee": 129.0, "starts_at": "2026-10-01", "published": true,
			"instructor": map[string]interface{}{"name": "Tom Reyes", "email": "tom@edudesk.dev"}},
		{"title": "Intro to Statistics", "category": "Data", "level": "beginner", "mode": "hybrid",
			"fee": 0.0, "starts_at": "2026-09-01", "published": false,
			"instructor": map[string]interface{}{"name": "Maria Keller", "email": "maria@edudesk.dev"}},
		{"title": "Public Speaking", "category": "Soft Skills", "level": "intermediate", "mode": "in_person",
			"fee": 89.5, "starts_at": "2026-11-20", "published": true,
			"instructor": map[string]interface{}{"name": "Aisha Khan", "email": "aisha@edudesk.dev"}},
	})

	s.data["contacts"] = withIDs([]map[string]interface{}{
		{"name": "Jane Doe", "email": "jane@example.com", "phone": "+1 555 0100",
			"subject": "Course question", "status": "new", "created_at": "2026-08-20T09:15:00Z"},
		{"name": "John Smith", "email": "john@example.com", "phone": "",
			"subject": "Refund request", "status": "replied", "created_at": "2026-08-18T14:30:00Z"},
		{"name": "Priya Patel", "email": "priya@example.com", "phone": "+44 20 7946 0958",
			"subject": "Group booking", "status": "new", "created_at": "2026-08-25T11:00:00Z"},
	})

	s.data["feedback"] = withIDs([]map[string]interface{}{
		{"rating": 5, "comment": "Excellent pacing.", "created_at": "2026-08-10T08:00:00Z",
			"user":   map[string]interface{}{"name": "Jane Doe", "email": "jane@example.com"},
			"course": map[string]interface{}{"title": "Go Basics"}},
		{"rating": 3, "comment": "More exercises please.", "created_at": "2026-08-12T16:45:00Z",
			"user":   map[string]interface{}{"name": "John Smith", "email": "john@example.com"},
			"course": map[string]interface{}{"title": "Advanced SQL"}},
	})

	s.data["tickets"] = withIDs([]map[string]interface{}{
		{"subject": "Cannot reset password", "category": "account", "priority": "high",
			"status": "open", "created_at": "2026-08-28T10:00:00Z",
			"user": map[string]interface{}{"name": "Priya Patel", "email": "priya@example.com"}},
		{"subject": "Video buffering", "category": "platform", "priority": "medium",
			"status": "resolved", "created_at": "2026-08-21T13:20:00Z",
			"user": map[string]interface{}{"name": "Jane Doe", "email": "jane@example.com"}},
	})

	s.data["enrollments"] = withIDs([]map[string]interface{}{
		{"progress": 82.5, "completed": false, "enrolled_at": "2026-07-01",
			"user":   map[string]interface{}{"name": "Jane Doe", "email": "jane@example.com"},
			"course": map[string]interface{}{"title": "Go Basics"}},
		{"progress": 100.0, "completed": true, "enrolled_at": "2026-06-15",
			"user":   map[string]interface{}{"name": "John Smith", "email": "john@example.com"},
			"course": map[string]interface{}{"title": "Go Basics"}},
		{"progress": 12.0, "completed": false, "enrolled_at": "2026-08-05",
			"user":   map[string]interface{}{"name": "Priya Patel", "email": "priya@example.com"},
			"course": map[string]interface{}{"title": "Advanced SQL"}},
	})
}

func withIDs(records []map[string]interface{}) []map[string]interface{} {
	for _, record := range records {
		record["id"] = uuid.NewString()
	}
	return records
}
