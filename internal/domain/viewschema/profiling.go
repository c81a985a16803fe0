package viewschema

// Base documents and the profiling module's own patch set. The base forms
// belong to the host application; profiling extends them the same way any
// other module would, through the patch pipeline.

// PartnerBaseForm is the host partner form before profiling extends it.
func PartnerBaseForm() Document {
	return Document{Root: &Node{
		Key:  "partner_form",
		Kind: "form",
		Children: []*Node{
			{Key: "partner_general", Kind: "page", Label: "General", Children: []*Node{
				{Key: "partner_name", Kind: "field", Label: "Name"},
				{Key: "partner_email", Kind: "field", Label: "Email"},
				{Key: "partner_phone", Kind: "field", Label: "Phone"},
			}},
			{Key: "partner_categories_page", Kind: "page", Label: "Categories", Children: []*Node{
				{Key: "partner_categories", Kind: "field", Label: "Categories"},
			}},
			{Key: "partner_notes", Kind: "page", Label: "Notes", Children: []*Node{
				{Key: "partner_comment", Kind: "field", Label: "Internal Notes"},
			}},
		},
	}}
}

// SegmentationBaseForm is the host segmentation form before profiling
// replaces its sales-rule page with the answer-rule page.
func SegmentationBaseForm() Document {
	return Document{Root: &Node{
		Key:  "segmentation_form",
		Kind: "form",
		Children: []*Node{
			{Key: "segmentation_definition", Kind: "page", Label: "Definition", Children: []*Node{
				{Key: "segmentation_name", Kind: "field", Label: "Name"},
				{Key: "segmentation_description", Kind: "field", Label: "Description"},
				{Key: "segmentation_category", Kind: "field", Label: "Category"},
				{Key: "segmentation_parent", Kind: "field", Label: "Parent"},
				{Key: "segmentation_exclusive", Kind: "field", Label: "Exclusive"},
			}},
			{Key: "segmentation_sales_rules", Kind: "page", Label: "Sales Purchase", Children: []*Node{
				{Key: "segmentation_sales_limit", Kind: "field", Label: "Use The Sales Purchase Rules"},
			}},
		},
	}}
}

// PartnerFormPatches injects the Profiling page before the notes page.
func PartnerFormPatches() []Patch {
	return []Patch{
		{
			Op:     OpInsertBefore,
			Anchor: "partner_notes",
			Node: &Node{Key: "partner_profiling", Kind: "page", Label: "Profiling", Children: []*Node{
				{Key: "partner_answers", Kind: "field", Label: "Answers"},
				{Key: "partner_open_questionnaire", Kind: "button", Label: "Use a questionnaire"},
			}},
		},
	}
}

// SegmentationFormPatches swaps the sales-rule page for the answer-rule
// page and appends the run button inside the definition page.
func SegmentationFormPatches() []Patch {
	return []Patch{
		{
			Op:     OpReplace,
			Anchor: "segmentation_sales_rules",
			Node: &Node{Key: "segmentation_profiling_rules", Kind: "page", Label: "Profiling", Children: []*Node{
				{Key: "segmentation_answers_yes", Kind: "field", Label: "Included Answers"},
				{Key: "segmentation_answers_no", Kind: "field", Label: "Excluded Answers"},
			}},
		},
		{
			Op:     OpAppendInside,
			Anchor: "segmentation_definition",
			Node:   &Node{Key: "segmentation_run", Kind: "button", Label: "Compute Segmentation"},
		},
	}
}

// PartnerForm returns the partner form with profiling applied.
func PartnerForm() (Document, error) {
	return Apply(PartnerBaseForm(), PartnerFormPatches())
}

// SegmentationForm returns the segmentation form with profiling applied.
func SegmentationForm() (Document, error) {
	return Apply(SegmentationBaseForm(), SegmentationFormPatches())
}
