package analytics

import "strings"

// certEntry maps a skill keyword to its recommended certifications. Table
// order matters: the first matching entry wins, so broader keywords sit
// after the more specific ones they would otherwise shadow.
type certEntry struct {
	Keyword        string
	Certifications []string
}

var certificationTable = []certEntry{
	{"python", []string{"Python Institute PCAP", "AWS Certified Developer", "Google Cloud Professional Developer"}},
	{"tensorflow", []string{"Google TensorFlow Developer Certificate", "AWS Machine Learning Specialty"}},
	{"pytorch", []string{"PyTorch Scholarship Challenge", "Deep Learning Specialization (Coursera)"}},
	{"aws", []string{"AWS Certified Solutions Architect", "AWS Certified Machine Learning Specialty"}},
	{"azure", []string{"Microsoft Azure AI Engineer Associate", "Microsoft Azure Data Scientist Associate"}},
	{"gcp", []string{"Google Cloud Professional ML Engineer", "Google Cloud Professional Data Engineer"}},
	{"kubernetes", []string{"Certified Kubernetes Administrator (CKA)", "Certified Kubernetes Application Developer (CKAD)"}},
	{"docker", []string{"Docker Certified Associate", "Kubernetes and Docker Security"}},
	{"sql", []string{"Microsoft SQL Server Certification", "Oracle Database SQL Certified Associate"}},
	{"spark", []string{"Databricks Certified Associate Developer", "Cloudera Certified Spark Developer"}},
	{"hadoop", []string{"Cloudera Certified Hadoop Developer", "Hortonworks Data Platform Certification"}},
	{"tableau", []string{"Tableau Desktop Specialist", "Tableau Server Certified Associate"}},
	{"power bi", []string{"Microsoft Power BI Data Analyst Associate", "Microsoft Power Platform Fundamentals"}},
	{"r", []string{"R Programming Certification", "Data Science with R (Coursera)"}},
	{"java", []string{"Oracle Certified Java Developer", "Spring Professional Certification"}},
	{"scala", []string{"Lightbend Scala Professional", "Databricks Certified Associate Developer"}},
	{"linux", []string{"CompTIA Linux+", "Red Hat Certified System Administrator"}},
	{"git", []string{"GitHub Certified Developer", "GitLab Certified Associate"}},
	{"nlp", []string{"Natural Language Processing Specialization", "Deep Learning Specialization"}},
	{"computer vision", []string{"Computer Vision Specialization", "Deep Learning Specialization"}},
	{"deep learning", []string{"Deep Learning Specialization (Coursera)", "Fast.ai Practical Deep Learning"}},
	{"machine learning", []string{"Machine Learning Specialization (Stanford)", "AWS Machine Learning Specialty"}},
	{"data science", []string{"IBM Data Science Professional Certificate", "Google Data Analytics Certificate"}},
	{"mlops", []string{"MLOps Specialization (Coursera)", "AWS Machine Learning Specialty"}},
}

// CertificationRecommendations maps each input skill to the certification
// list of its first matching table entry. A skill matches a keyword when
// either lower-cased string contains the other. Skills with no match are
// omitted from the result.
func (a *Analyzer) CertificationRecommendations(skills []string) map[string][]string {
	recommendations := make(map[string][]string)
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		for _, entry := range certificationTable {
			if strings.Contains(lower, entry.Keyword) || strings.Contains(entry.Keyword, lower) {
				recommendations[skill] = entry.Certifications
				break
			}
		}
	}
	return recommendations
}
