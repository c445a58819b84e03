package ui

import (
	"strings"

	"edudesk/app"
	"edudesk/domain/csvimport"
	"edudesk/domain/table"
)

// Screens returns the back-office screen registry. Each screen supplies
// its own column contract, searchable fields, discrete filters and summary
// cards; the engine underneath is shared.
func Screens() []app.Screen {
	return []app.Screen{coursesScreen(), contactsScreen(), feedbackScreen(), ticketsScreen(), analyticsScreen()}
}

func coursesScreen() app.Screen {
	return app.Screen{
		Name:     "courses",
		Title:    "Courses",
		Resource: "courses",
		Columns: []table.ColumnDefinition{
			{Key: "title", Title: "Title", Sortable: true},
			{Key: "category", Title: "Category", Sortable: true},
			{Key: "level", Title: "Level", Sortable: true},
			{Key: "mode", Title: "Mode", Sortable: true},
			{Key: "fee", Title: "Fee", Sortable: true, CompareAs: table.CompareNumber},
			{Key: "starts_at", Title: "Start Date", Sortable: true, CompareAs: table.CompareDate},
			{Key: "published", Title: "Published", Sortable: true},
			{Key: "instructor", Title: "Instructor", Sortable: true, ExportKey: "instructor.name"},
		},
		SearchableFields: []string{"title", "category", "instructor.name"},
		DiscreteFilters:  []string{"level", "mode", "published", "category"},
		Cards: []app.CardSpec{
			{Label: "Total Courses", Kind: app.CardCount},
			{Label: "Published", Kind: app.CardCountWhere, Field: "published", Match: "true"},
			{Label: "Average Fee", Kind: app.CardMean, Field: "fee"},
			{Label: "Highest Fee", Kind: app.CardMax, Field: "fee"},
		},
		ImportContract: &csvimport.Contract{
			Resource: "courses",
			Required: []string{"title", "level", "mode"},
			Fields: []csvimport.FieldSpec{
				{Name: "title", Type: csvimport.FieldText, Required: true, Example: "Intro to Go"},
				{Name: "category", Type: csvimport.FieldText, Example: "Programming"},
				{Name: "level", Type: csvimport.FieldEnum, Required: true,
					Enum: []string{"beginner", "intermediate", "advanced"}, Example: "beginner"},
				{Name: "mode", Type: csvimport.FieldEnum, Required: true,
					Enum: []string{"online", "onsite", "hybrid"}, Example: "online"},
				{Name: "fee", Type: csvimport.FieldNumber,
					Normalize: stripCurrency, Example: "199.99"},
				{Name: "starts_at", Type: csvimport.FieldDate, Example: "2026-01-15"},
				{Name: "published", Type: csvimport.FieldBool, Example: "true"},
			},
		},
	}
}

func contactsScreen() app.Screen {
	return app.Screen{
		Name:     "contacts",
		Title:    "Contacts",
		Resource: "contacts",
		Columns: []table.ColumnDefinition{
			{Key: "name", Title: "Name", Sortable: true},
			{Key: "email", Title: "Email", Sortable: true},
			{Key: "phone", Title: "Phone"},
			{Key: "subject", Title: "Subject", Sortable: true},
			{Key: "status", Title: "Status", Sortable: true},
			{Key: "created_at", Title: "Received", Sortable: true, CompareAs: table.CompareDate},
		},
		SearchableFields: []string{"name", "email", "subject"},
		DiscreteFilters:  []string{"status"},
		Cards: []app.CardSpec{
			{Label: "Total Contacts", Kind: app.CardCount},
			{Label: "New", Kind: app.CardCountWhere, Field: "status", Match: "new"},
			{Label: "Replied", Kind: app.CardCountWhere, Field: "status", Match: "replied"},
		},
		ImportContract: &csvimport.Contract{
			Resource: "contacts",
			Required: []string{"name", "email"},
			Fields: []csvimport.FieldSpec{
				{Name: "name", Type: csvimport.FieldText, Required: true, Example: "Jane Doe"},
				{Name: "email", Type: csvimport.FieldText, Required: true, Example: "jane@example.com"},
				{Name: "phone", Type: csvimport.FieldText, Example: "+1 555 0100"},
				{Name: "subject", Type: csvimport.FieldText, Example: "Course question"},
				{Name: "status", Type: csvimport.FieldEnum,
					Enum: []string{"new", "replied", "archived"}, Example: "new"},
			},
		},
	}
}

func feedbackScreen() app.Screen {
	return app.Screen{
		Name:     "feedback",
		Title:    "Feedback",
		Resource: "feedback",
		Columns: []table.ColumnDefinition{
			{Key: "user", Title: "Student", Sortable: true, ExportKey: "user.name"},
			{Key: "course", Title: "Course", Sortable: true, ExportKey: "course.title"},
			{Key: "rating", Title: "Rating", Sortable: true, CompareAs: table.CompareNumber},
			{Key: "comment", Title: "Comment"},
			{Key: "created_at", Title: "Submitted", Sortable: true, CompareAs: table.CompareDate},
		},
		SearchableFields: []string{"user.name", "course.title", "comment"},
		DiscreteFilters:  []string{"rating"},
		Cards: []app.CardSpec{
			{Label: "Total Feedback", Kind: app.CardCount},
			{Label: "Average Rating", Kind: app.CardMean, Field: "rating"},
		},
	}
}

func ticketsScreen() app.Screen {
	return app.Screen{
		Name:     "tickets",
		Title:    "Support Tickets",
		Resource: "tickets",
		Columns: []table.ColumnDefinition{
			{Key: "subject", Title: "Subject", Sortable: true},
			{Key: "user", Title: "Reporter", Sortable: true, ExportKey: "user.email"},
			{Key: "category", Title: "Category", Sortable: true},
			{Key: "priority", Title: "Priority", Sortable: true},
			{Key: "status", Title: "Status", Sortable: true},
			{Key: "created_at", Title: "Opened", Sortable: true, CompareAs: table.CompareDate},
		},
		SearchableFields: []string{"subject", "user.email", "category"},
		DiscreteFilters:  []string{"status", "priority", "category"},
		Cards: []app.CardSpec{
			{Label: "Total Tickets", Kind: app.CardCount},
			{Label: "Open", Kind: app.CardCountWhere, Field: "status", Match: "open"},
			{Label: "Urgent", Kind: app.CardCountWhere, Field: "priority", Match: "urgent"},
		},
	}
}

func analyticsScreen() app.Screen {
	return app.Screen{
		Name:     "analytics",
		Title:    "Enrollment Analytics",
		Resource: "enrollments",
		Columns: []table.ColumnDefinition{
			{Key: "course", Title: "Course", Sortable: true, ExportKey: "course.title"},
			{Key: "user", Title: "Student", Sortable: true, ExportKey: "user.email"},
			{Key: "progress", Title: "Progress %", Sortable: true, CompareAs: table.CompareNumber},
			{Key: "completed", Title: "Completed", Sortable: true},
			{Key: "enrolled_at", Title: "Enrolled", Sortable: true, CompareAs: table.CompareDate},
		},
		SearchableFields: []string{"course.title", "user.email"},
		DiscreteFilters:  []string{"completed"},
		Cards: []app.CardSpec{
			{Label: "Total Enrollments", Kind: app.CardCount},
			{Label: "Completed", Kind: app.CardCountWhere, Field: "completed", Match: "true"},
			{Label: "Average Progress", Kind: app.CardMean, Field: "progress"},
		},
	}
}

func stripCurrency(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(s, "€")
	return strings.TrimSpace(s)
}
