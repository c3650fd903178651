package dto

import "encoding/xml"

// Input documents. Optional children are pointers so a missing element can be
// told apart from an empty one.

// ProductCategoriesDocument is the root of ProductCategories.xml
type ProductCategoriesDocument struct {
	XMLName xml.Name                `xml:"ProductCategories"`
	Items   []ProductCategoryRecord `xml:"ProductCategory"`
}

// ProductCategoryRecord is one <ProductCategory Id="..."> element
type ProductCategoryRecord struct {
	ID            *string `xml:"Id,attr"`
	Name          *string `xml:"Name"`
	WarrantyYears *string `xml:"WarrantyYears"`
}

// OperationsDocument is the root of Operations.xml
type OperationsDocument struct {
	XMLName xml.Name          `xml:"Operations"`
	Items   []OperationRecord `xml:"Operation"`
}

// OperationRecord is one <Operation Id="..."> element
type OperationRecord struct {
	ID    *string `xml:"Id,attr"`
	Name  *string `xml:"Name"`
	Price *string `xml:"Price"`
}

// ServiceReportsDocument is the root of ServiceReports.xml
type ServiceReportsDocument struct {
	XMLName xml.Name              `xml:"ServiceReports"`
	Items   []ServiceReportRecord `xml:"ServiceReport"`
}

// ServiceReportRecord is one <ServiceReport> element
type ServiceReportRecord struct {
	ProductCategoryID  *string `xml:"ProductCategoryId"`
	OperationID        *string `xml:"OperationId"`
	ProductReleaseDate *string `xml:"ProductReleaseDate"`
}

// Export documents

// RevenueReportDocument is written to Task2.xml
type RevenueReportDocument struct {
	XMLName    xml.Name                `xml:"RevenueReport"`
	Categories []RevenueCategoryRecord `xml:"ProductCategory"`
}

// RevenueCategoryRecord holds the operation sums of one category
type RevenueCategoryRecord struct {
	Name       string               `xml:"Name,attr"`
	Operations []OperationSumRecord `xml:"Operation"`
}

// OperationSumRecord is an operation with its summed price
type OperationSumRecord struct {
	Name string `xml:"Name,attr"`
	Sum  string `xml:"Sum,attr"`
}

// WarrantyReportDocument is written to Task3.xml
type WarrantyReportDocument struct {
	XMLName    xml.Name               `xml:"WarrantyReport"`
	Operations []OperationCountRecord `xml:"Operation"`
}

// OperationCountRecord is an operation with how many times it was done
type OperationCountRecord struct {
	Name  string `xml:"Name,attr"`
	Count int    `xml:"Count,attr"`
}

// OperationCountsHeader is the header row of Task1.csv
var OperationCountsHeader = []string{"ProductCategoryName", "OperationName", "Count"}
