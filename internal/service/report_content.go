package service

import "fed-sentiment/internal/domain"

const (
	reportTitle   = "FED MONETARY POLICY SENTIMENT CALCULATOR"
	reportAuthors = "by Elia Landini, Jessie Cameron & Lina Abril (Pantheon-Sorbonne University)"
)

const abstractText = `<div style="text-align: justify">
The project aims to conduct textual analysis of the Federal Reserve's (FED) Monetary Policy Reports through the deployment of Python-based software.
This report is written semi-annually and provided to Congress containing discussions on the conduct of monetary policy and economic developments and prospects for the future.
First, we develop a web scraping script to extract textual data from the FED's website.
Subsequently, we use the Natural Language Toolkit (NLTK) package to preprocess the text, including tokenization, stemming, and converting words to lowercase.
Next, the Loughran McDonald Sentiment Dictionary is employed to transform the cleaned qualitative text data into a quantitative measure of the FED's communication tone.
This communication measure is then regressed against the output gap and inflation gap, obtained via API, to assess the sensitivity of the FED's communication to these macroeconomic variables.
Throughout the project, we employ various visualisation and analysis packages to explore the data and conduct preliminary analysis.
</div>
`

const surveyIntroText = `We are conducting a survey to gather insights on current hot topics in monetary policy. We value your perception and opinions, and your responses will be treated with strict confidentiality and in accordance with non-profiling and anonymity principles.`

const statementsText = `<div class="justify">

This section describes the preliminary text analysis performed on the data from the Federal Reserve (FED). The analysis includes calculating several textual features that provide insights into the complexity and structure of the statements. The nltk package is a comprehensive library for natural language processing and it is used for:

* **Tokenization:** splitting the text into individual words and sentences using word_tokenize and sent_tokenize.
* **Stopwords:** providing a list of common stopwords in English, which is used to calculate the ratio of stopwords in the text.

New variables are then created to analyse the textual data from the Federal Reserve (FED). Specifically:

* **1. Word Count**: total number of words per statement.
* **2. Sentence Count**: total number of sentences per statement.
* **3. Unique Word Count**: total number of unique words in the text.
* **4. Character Count**: total number of characters in the text.
* **5. Average Words per Sentence**: average number of words per sentence.
* **6. Ratio of Complex Words**: share of complex words (three or more syllables) in the total word count.
* **7. Ratio of Stop Words**: proportion of stop words ("and", "the", "is", etc.) in the total word count.
* **8. Average Syllables per Word**: average number of syllables per word in the text.
* **9. Lexical Diversity**: ratio between the number of unique words and the total number of words.
* **10. Average Sentence Length**: average length of sentences in the text.

---

After computing these variables, the data are summarised using descriptive statistics tables and visually. This exploratory analysis provides insights into the textual characteristics of the FED data before conducting regression analysis.

</div>
`

const cleanedText = `<div style="text-align: justify">
The presented dataframe provides an overview of the textual data resulting from a series of cleaning techniques. The Monetary Policy Reports are pre-processed by excluding administrative details on the webpage to focus on the core of the text. Several additional steps were undertaken to clean the data prior to estimating the tone of the minutes, using NLTK: tokenisation, stopword removal, and lemmatization.
</div>
`

const wordFrequencyText = `<div style="text-align: justify">
Taking the text of all the columns, we join them and remove some repeated words which have no economic sense, then we count them and find the frequency in which they appear. With wordcloud, matplotlib and seaborn we plot the most repeated words.
</div>
`

const toneText = `This section converts the qualitative textual data to a quantitative measure. A lexicon-based method is used which relies on a pre-defined list of words called lexicons or dictionaries, each associated with sentiment scores ranging from positive to negative. In particular, the Loughran and McDonald (2011) financial sentiment dictionary is employed in this study as it is the most suitable approach for classifying financial and economic texts.

The sentiment score is calculated by subtracting the count of negative words from the count of positive words, and then dividing by the total count of positive and negative words:

$$
\text{Tone} = \frac{N_{\text{pos}} - N_{\text{neg}}}{N_{\text{pos}} + N_{\text{neg}}}
$$

Where:
- $N_{\text{pos}}$ is the number of words in the minutes that are classified as positive according to the Loughran-McDonald sentiment dictionary.
- $N_{\text{neg}}$ is the number of words that are classified as negative.

The measure of tone is bounded between [-1:1]. A positive value of the tone measure reflects some optimism in the language used, while a negative value reflects some pessimism.

| Scale    | Number of Words | Sample Words |
|----------|-----------------|--------------|
| Negative | 2,335 | adverse, caution, challenge, collapse, crisis, decline, deteriorate, difficult, diminish, exacerbate, failure, liquidated, loss, negative, punishes, recession, severe, slowdown, stagnate, unemployed |
| Positive | 354 | achieve, advantage, attain, boom, constructive, efficient, enhance, favourable, gained, highest, improve, leading, optimistic, positive, profitable, progress, rebound, stabilize, strengthen, strong |

*Source: Loughran and McDonald (2011)*
`

const regressionText = `The study follows a similar approach to Bulir et al. (2013) and arrives at the following specification:

$$
C_t = \alpha + \beta_T T_t + \beta_{\mu} (\mu_t - \mu_t^\*) + \beta_{\pi} (\pi_t - \pi_t^\*) + \beta_{FC} \delta_{FC} + \beta_{cov} \delta_{cov} + \varepsilon_t
$$

Where:
- $C_t$ is the tone of communication measured using the Loughran-McDonald sentiment dictionary, with higher values indicative of a more positive tone, while lower values suggest a more negative sentiment.
- The model includes two deterministic variables: $\alpha$ is a constant and $T_t$ is a linear trend.
- $\beta_{\mu} (\mu_t - \mu_t^\*)$ is the difference between the logarithmic level of real Gross Domestic Product (GDP, $\mu_t$) and its trend value ($\mu_t^\*$), estimated using the Hodrick-Prescott (HP) filter.
- $\beta_{\pi} (\pi_t - \pi_t^\*)$ is the absolute difference between contemporaneous inflation ($\pi_t$) and the Fed's inflation target ($\pi_t^\*$).
- $\delta_{FC}$ is a dummy variable equal to 1 from 2007:H2 to 2009:H1, 0 otherwise, to capture the effects of the financial crisis.
- $\delta_{cov}$ is a dummy variable equal to 1 from 2020:H1 to 2023:H2, 0 otherwise, to analyse the Covid-19 period.
`

func pair(label, value string) domain.StatPair {
	return domain.StatPair{Label: label, Value: value}
}

// regressionSummary es la salida OLS (HC3) del estudio, fija.
func regressionSummary() domain.RegressionSummary {
	return domain.RegressionSummary{
		Model: [][2]domain.StatPair{
			{pair("Dep. Variable:", "comm"), pair("R-squared:", "0.335")},
			{pair("Model:", "OLS"), pair("Adj. R-squared:", "0.256")},
			{pair("Method:", "Least Squares"), pair("F-statistic:", "5.066")},
			{pair("Date:", "Thu, 30 May 2024"), pair("Prob (F-statistic):", "0.00101")},
			{pair("Time:", "12:15:24"), pair("Log-Likelihood:", "0.095492")},
			{pair("No. Observations:", "48"), pair("AIC:", "11.81")},
			{pair("Df Residuals:", "42"), pair("BIC:", "23.04")},
			{pair("Df Model:", "5"), pair("", "")},
			{pair("Covariance Type:", "HC3"), pair("", "")},
		},
		Coefficients: []domain.Coefficient{
			{Variable: "const", Coef: "-0.4437", StdErr: "0.060", Z: "-7.365", PValue: "0.000", Lower: "-0.562", Upper: "-0.326"},
			{Variable: "trend", Coef: "0.0129", StdErr: "0.003", Z: "4.559", PValue: "0.000", Lower: "0.007", Upper: "0.018"},
			{Variable: "CPI_gap", Coef: "-0.0704", StdErr: "0.065", Z: "-1.085", PValue: "0.278", Lower: "-0.198", Upper: "0.057"},
			{Variable: "GDP_gap", Coef: "4.7211", StdErr: "2.455", Z: "1.923", PValue: "0.054", Lower: "-0.090", Upper: "9.533"},
			{Variable: "FC", Coef: "-0.2579", StdErr: "0.094", Z: "-2.756", PValue: "0.006", Lower: "-0.441", Upper: "-0.075"},
			{Variable: "Covid", Coef: "-0.2412", StdErr: "0.295", Z: "-0.818", PValue: "0.413", Lower: "-0.819", Upper: "0.336"},
		},
		Diagnostics: [][2]domain.StatPair{
			{pair("Omnibus:", "1.459"), pair("Durbin-Watson:", "1.751")},
			{pair("Prob(Omnibus):", "0.482"), pair("Jarque-Bera (JB):", "0.695")},
			{pair("Skew:", "0.215"), pair("Prob(JB):", "0.707")},
			{pair("Kurtosis:", "3.404"), pair("Cond. No.", "2.02e+03")},
		},
		Notes: []string{
			"Standard Errors are heteroscedasticity robust (HC3).",
			"The condition number is large, 2.02e+03. This might indicate that there are strong multicollinearity or other numerical problems.",
			"Robustness checks and their results are addressed in the main code file.",
		},
	}
}
